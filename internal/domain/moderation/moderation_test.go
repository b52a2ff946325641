package moderation

import "testing"

func TestScan_PhonePatterns(t *testing.T) {
	blocked := []string{
		"Me liga no 11999990000",
		"Me liga (27) 99999-1234",
		"whats +55 27 99999 1234",
		"tel: 2733334444",
		"liga 27 3333-4444 depois das 18h",
	}
	for _, text := range blocked {
		res := Scan(text)
		if !res.Blocked {
			t.Fatalf("expected %q to be blocked", text)
		}
		if res.Reason != ReasonPhone {
			t.Fatalf("expected phone reason for %q, got %s", text, res.Reason)
		}
	}
}

func TestScan_EmailPatterns(t *testing.T) {
	res := Scan("Manda email para contato@teste.com")
	if !res.Blocked {
		t.Fatal("expected email text to be blocked")
	}
	if res.Reason != ReasonEmail {
		t.Fatalf("expected email reason, got %s", res.Reason)
	}
}

func TestScan_SafeText(t *testing.T) {
	safe := []string{
		"Consigo resolver em 3 dias",
		"Olá, sou credenciado e posso resolver em 2 dias.",
		"Taxa do Detran custa R$ 160,80 e o prazo é 5 dias úteis",
		"",
	}
	for _, text := range safe {
		if res := Scan(text); res.Blocked {
			t.Fatalf("expected %q to pass, blocked with reason %s", text, res.Reason)
		}
	}
}

func TestScan_ShortDigitRunsPass(t *testing.T) {
	// Fewer than 10 digits is not phone-like (prices, dates, plate numbers).
	if res := Scan("Placa ABC1234, ano 2021"); res.Blocked {
		t.Fatalf("expected short digit runs to pass, got reason %s", res.Reason)
	}
}

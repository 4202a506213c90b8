package i18n

import "testing"

func TestTSubstitutesVars(t *testing.T) {
	got := T("levelup", map[string]string{"user": "ana", "level": "3"})
	expected := "⬆️ **ana** subiu para o nível **3**!"
	if got != expected {
		t.Errorf("T(levelup) = %q, expected %q", got, expected)
	}
}

func TestTUnknownKeyReturnsKey(t *testing.T) {
	if got := T("no.such.key", nil); got != "no.such.key" {
		t.Errorf("T(unknown) = %q, expected the key itself", got)
	}
}

func TestTNoVars(t *testing.T) {
	if got := T("error.generic", nil); got == "" || got == "error.generic" {
		t.Errorf("T(error.generic) = %q, expected a message", got)
	}
}

func TestReasonMessagesExist(t *testing.T) {
	reasons := []string{"NOT_FOUND", "AUTH", "RATE_LIMIT", "TIMEOUT", "SERVER", "NETWORK", "UNKNOWN"}
	for _, reason := range reasons {
		key := "error." + reason
		if got := T(key, nil); got == key {
			t.Errorf("missing localized message for %s", reason)
		}
	}
}

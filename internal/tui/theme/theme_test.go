package theme

import "testing"

func TestByName(t *testing.T) {
	for _, want := range All {
		if got := ByName(want.Name); got.Name != want.Name {
			t.Errorf("ByName(%q) = %q", want.Name, got.Name)
		}
	}
	if got := ByName("solarized"); got.Name != FlexokiDark.Name {
		t.Errorf("ByName(unknown) = %q, want flexoki-dark fallback", got.Name)
	}
}

func TestSetActive(t *testing.T) {
	SetActive("terminal")
	if Active.Name != "terminal" {
		t.Errorf("Active = %q after SetActive(terminal)", Active.Name)
	}
	SetActive("flexoki-dark")
}

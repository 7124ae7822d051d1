package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(20, 32, 32); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Title, Meters} {
		if !Loaded(name) || name.Get() == nil {
			t.Errorf("font %s not loaded", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 12); err == nil {
		t.Fatal("expected a parse error")
	}
	if Loaded("broken") {
		t.Error("broken font registered")
	}
}

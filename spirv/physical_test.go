package spirv

import "testing"

func TestVersionRawVersion(t *testing.T) {
	tests := []struct {
		version Version
		want    Word
	}{
		{Version{1, 0}, 0x00010000},
		{Version{1, 3}, 0x00010300},
		{Version{1, 6}, 0x00010600},
	}
	for _, tt := range tests {
		if got := tt.version.rawVersion(); got != tt.want {
			t.Errorf("Version%v.rawVersion() = 0x%08X, want 0x%08X", tt.version, got, tt.want)
		}
	}
}

func TestPhysicalLayoutToWords(t *testing.T) {
	p := PhysicalLayout{Version: Version{1, 3}, GeneratorID: GeneratorID, Bound: 12, Reserved: 0}
	var words []Word
	p.ToWords(&words)

	if len(words) != 5 {
		t.Fatalf("PhysicalLayout.ToWords() produced %d words, want 5", len(words))
	}
	if words[0] != MagicNumber {
		t.Errorf("word[0] = 0x%08X, want magic 0x%08X", words[0], uint32(MagicNumber))
	}
	if words[1] != 0x00010300 {
		t.Errorf("word[1] (version) = 0x%08X, want 0x00010300", words[1])
	}
	if words[3] != 12 {
		t.Errorf("word[3] (bound) = %d, want 12", words[3])
	}
}

func TestNewPhysicalLayoutDefaults(t *testing.T) {
	p := newPhysicalLayout(Version1_3)
	if p.GeneratorID != GeneratorID {
		t.Errorf("GeneratorID = %d, want %d", p.GeneratorID, uint32(GeneratorID))
	}
	if p.Bound != 0 {
		t.Errorf("Bound = %d, want 0 before any id is allocated", p.Bound)
	}
}

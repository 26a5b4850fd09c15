package brandgen

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        Style
	}{
		{"CloudTech Solutions", "", StyleTech},
		{"Green Garden Organics", "", StyleNature},
		{"Royal Diamond Jewelers", "", StyleLuxury},
		{"Pixel Art Studio", "", StyleCreative},
		{"Iron Fitness Gym", "", StyleBold},
		{"Heritage Law Firm", "traditional counsel", StyleClassic},
		{"Sleek Interiors", "clean contemporary spaces", StyleMinimal},
		{"Joe's Shop", "", StyleModern},
		{"", "", StyleModern},
	}
	for _, tc := range cases {
		if got := Classify(tc.name, tc.description); got != tc.want {
			t.Fatalf("Classify(%q, %q) = %s, want %s", tc.name, tc.description, got, tc.want)
		}
	}
}

func TestClassifyPriority(t *testing.T) {
	// tech is checked before nature, so a name matching both is tech.
	if got := Classify("EcoTech Systems", ""); got != StyleTech {
		t.Fatalf("EcoTech Systems = %s, want tech", got)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("LUXURY GOODS", ""); got != StyleLuxury {
		t.Fatalf("uppercase name = %s, want luxury", got)
	}
	if got := Classify("Bakery", "ORGANIC sourdough"); got != StyleNature {
		t.Fatalf("uppercase description = %s, want nature", got)
	}
}

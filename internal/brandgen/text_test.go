package brandgen

import (
	"strings"
	"testing"
)

func TestGenerateTextSlogan(t *testing.T) {
	got := GenerateText("Write a slogan for Acme Coffee", "")
	if !strings.Contains(got, "Acme Coffee") {
		t.Fatalf("slogan missing business name: %q", got)
	}
}

func TestGenerateTextDeterministic(t *testing.T) {
	prompt := "Write a description for CloudTech Solutions"
	if GenerateText(prompt, "") != GenerateText(prompt, "") {
		t.Fatal("same prompt produced different text")
	}
}

func TestGenerateTextBranches(t *testing.T) {
	cases := []struct {
		prompt string
		expect string
	}{
		{"Write marketing copy for Acme Coffee", "Acme Coffee"},
		{"Write an about section for Iron Fitness Gym", "Iron Fitness Gym"},
		{"Something vague entirely", "Something Vague"},
	}
	for _, tc := range cases {
		got := GenerateText(tc.prompt, "")
		if !strings.Contains(got, tc.expect) {
			t.Fatalf("GenerateText(%q) = %q, missing %q", tc.prompt, got, tc.expect)
		}
	}
}

func TestGenerateTextDescriptionWinsOverSlogan(t *testing.T) {
	got := GenerateText("Write a description and slogan for Acme Coffee", StyleModern)
	found := false
	for _, tmpl := range descriptionTemplates[StyleModern] {
		if got == strings.Replace(tmpl, "%s", "Acme Coffee", -1) {
			found = true
		}
	}
	if !found {
		t.Fatalf("mixed prompt should take the description branch, got %q", got)
	}
}

func TestGenerateTextExplicitStyle(t *testing.T) {
	got := GenerateText("Write a slogan for Acme Coffee", StyleLuxury)
	found := false
	for _, tmpl := range sloganTemplates[StyleLuxury] {
		if got == strings.Replace(tmpl, "%s", "Acme Coffee", -1) {
			found = true
		}
	}
	if !found {
		t.Fatalf("explicit luxury style not honored: %q", got)
	}
}

func TestExtractBusinessName(t *testing.T) {
	cases := []struct {
		prompt string
		want   string
	}{
		{"Write a slogan for Acme Coffee", "Acme Coffee"},
		{"slogan for acme coffee!", "Acme Coffee"},
		{"CloudTech description please", "Cloudtech Description"},
		{"", "Your Business"},
	}
	for _, tc := range cases {
		if got := extractBusinessName(tc.prompt); got != tc.want {
			t.Fatalf("extractBusinessName(%q) = %q, want %q", tc.prompt, got, tc.want)
		}
	}
}

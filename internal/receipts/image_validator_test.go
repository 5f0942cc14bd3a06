package receipts

import "testing"

func TestValidateImageExtension(t *testing.T) {
	valid := []string{"scan.jpg", "scan.JPEG", "photo.png", "photo.heic", "photo.webp"}
	for _, name := range valid {
		if err := ValidateImageExtension(name); err != nil {
			t.Errorf("ValidateImageExtension(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"doc.pdf", "archive.zip", "noext", "script.sh"}
	for _, name := range invalid {
		if err := ValidateImageExtension(name); err == nil {
			t.Errorf("ValidateImageExtension(%q) = nil, want error", name)
		}
	}
}

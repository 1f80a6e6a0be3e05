package api

import "testing"

func TestIsValidAssetObjectKey(t *testing.T) {
	valid := []string{
		"assets/abc.png",
		"assets/logo.jpg",
		"assets/shot.jpeg",
		"assets/img.webp",
	}
	for _, key := range valid {
		if !isValidAssetObjectKey(key) {
			t.Errorf("%q should be valid", key)
		}
	}

	invalid := []string{
		"",
		"exports/abc.png",
		"assets/../secrets.png",
		"assets//double.png",
		`assets\win.png`,
		"assets/file.exe",
		"assets/" + string(make([]byte, 200)) + ".png",
	}
	for _, key := range invalid {
		if isValidAssetObjectKey(key) {
			t.Errorf("%q should be invalid", key)
		}
	}
}

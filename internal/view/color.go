package view

import "fmt"

// HSL is a color in hue/saturation/lightness form.
type HSL struct {
	Hue        int `json:"hue"`
	Saturation int `json:"saturation"`
	Lightness  int `json:"lightness"`
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.Hue, c.Saturation, c.Lightness)
}

// CategoryColor derives a stable color from a category label. The hash is
// the classic 32-bit polynomial roll (h = code + h*31 per character) with
// wraparound, so labels keep the colors they had in the original web UI.
func CategoryColor(label string) HSL {
	var hash int32
	for _, r := range label {
		hash = int32(r) + ((hash << 5) - hash)
	}
	h := int(hash)
	if h < 0 {
		h = -h
	}
	return HSL{
		Hue:        h % 360,
		Saturation: 65 + h%20,
		Lightness:  45 + h%15,
	}
}

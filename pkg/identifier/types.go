package identifier

// Identifier is the classification of an STM32 device name.
//
// For "stm32f407vgt6" the fields are:
//
//	Platform "stm32", Family "f4", Name "407", PinID "v", SizeID "g", Variant "t6"
type Identifier struct {
	Platform string // "stm32"
	Family   string // "f4"
	Name     string // numeric model, "407"
	PinID    string // pin count class, "v"
	SizeID   string // memory size class, "g"
	Variant  string // package and temperature suffix, may be empty
}

// String returns the normalized lowercase device name.
func (id Identifier) String() string {
	return id.Platform + id.FamilyLetter() + id.Name + id.PinID + id.SizeID + id.Variant
}

// FamilyLetter returns the product line letter, "f" for "f4".
func (id Identifier) FamilyLetter() string {
	if id.Family == "" {
		return ""
	}
	return id.Family[:1]
}

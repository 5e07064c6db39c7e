package entity

// BloodType is an ABO/Rh group such as "O+".
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

// IsValid checks if the BloodType is one of the eight recognized groups.
func (b BloodType) IsValid() bool {
	switch b {
	case BloodTypeAPositive, BloodTypeANegative,
		BloodTypeBPositive, BloodTypeBNegative,
		BloodTypeABPositive, BloodTypeABNegative,
		BloodTypeOPositive, BloodTypeONegative:
		return true
	default:
		return false
	}
}

// String returns the string representation of the BloodType.
func (b BloodType) String() string {
	return string(b)
}

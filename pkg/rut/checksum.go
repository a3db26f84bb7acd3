package rut

// Checksum returns the modulus-11 verifier for a correlative.
//
// Digits are weighted from the least significant one with the repeating
// sequence 2..7. The remainder 11-(sum%11) maps 11 to '0', 10 to 'K' and
// anything else to its own digit.
func Checksum(correlative int) byte {
	sum, weight := 0, 2
	for n := correlative; n > 0; n /= 10 {
		sum += (n % 10) * weight
		if weight++; weight > 7 {
			weight = 2
		}
	}

	switch remainder := 11 - sum%11; remainder {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + remainder)
	}
}

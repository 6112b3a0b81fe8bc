package puz

// ParseVersion converts the four stored version bytes [major '.' minor ext]
// into a Version. Major and minor must be ASCII digits; no partial recovery
// is attempted.
func ParseVersion(raw [4]byte) (Version, error) {
	major, dot, minor, ext := raw[0], raw[1], raw[2], raw[3]
	if !isDigit(major) || dot != '.' || !isDigit(minor) {
		return Version{}, &VersionError{Raw: raw}
	}
	return Version{
		Major:     major - '0',
		Minor:     minor - '0',
		Extension: rune(ext),
	}, nil
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// PuzzleTypeFromCode maps a stored code to a PuzzleType. Codes are matched
// exactly; anything else yields a *PuzzleTypeError.
func PuzzleTypeFromCode(code uint16) (PuzzleType, error) {
	switch p := PuzzleType(code); p {
	case PuzzleNormal, PuzzleDiagramless:
		return p, nil
	default:
		return 0, &PuzzleTypeError{Code: code}
	}
}

// SolutionTypeFromCode maps a stored code to a SolutionType. Codes are
// matched exactly; anything else yields a *SolutionTypeError.
func SolutionTypeFromCode(code uint16) (SolutionType, error) {
	switch s := SolutionType(code); s {
	case SolutionNormal, SolutionMissing, SolutionScrambled:
		return s, nil
	default:
		return 0, &SolutionTypeError{Code: code}
	}
}

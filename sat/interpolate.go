package sat

import "github.com/luxfi/symcore/symerr"

// NewItpGroup enables interpolation mode and returns a fresh interpolation
// group id. Returns symerr.Unsupported if the backend is not Interpolating.
func (s *Solver) NewItpGroup() (int, error) {
	itp, ok := s.backend.(Interpolating)
	if !ok {
		return 0, symerr.NewUnsupported("backend does not support interpolation")
	}
	s.interpolation = true
	return itp.NewItpGroup(), nil
}

// CurrItpGroup returns the current interpolation group id.
func (s *Solver) CurrItpGroup() (int, error) {
	itp, ok := s.backend.(Interpolating)
	if !ok {
		return 0, symerr.NewUnsupported("backend does not support interpolation")
	}
	return itp.CurrItpGroup(), nil
}

// ExtractInterpolant extracts an interpolant spanning the given groups.
func (s *Solver) ExtractInterpolant(groups []int) (any, error) {
	itp, ok := s.backend.(Interpolating)
	if !ok {
		return nil, symerr.NewUnsupported("backend does not support interpolation")
	}
	return itp.ExtractInterpolant(groups)
}

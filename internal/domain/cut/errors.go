package cut

import "errors"

// ErrMissingFeatures indicates a supervision has no matching feature record.
var ErrMissingFeatures = errors.New("no matching features found")

// ErrDuplicateID indicates two cuts with the same identifier in one set.
var ErrDuplicateID = errors.New("duplicate cut id")

// ErrInvalidSplit indicates an unusable split count for the given set.
var ErrInvalidSplit = errors.New("invalid split count")

// ErrStereoPairing indicates a recording window without exactly two channel cuts.
var ErrStereoPairing = errors.New("malformed stereo pairing")

// ErrNonPositiveDuration indicates a cut or supervision with duration <= 0.
var ErrNonPositiveDuration = errors.New("non-positive duration")

// ErrNegativeOffset indicates a mix offset below zero.
var ErrNegativeOffset = errors.New("negative mix offset")

// ErrNonPositiveEnergy indicates a cut whose signal energy cannot anchor an
// SNR-derived gain.
var ErrNonPositiveEnergy = errors.New("non-positive signal energy")

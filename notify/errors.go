package notify

import "github.com/stridewalk/stride/internal/apperr"

var (
	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in ogg, mp3, flac, or wav format",
	}

	errInvalidPhaseCmd = &apperr.Error{
		Message: "unable to parse phase command: %v",
	}
)

package zerolog

import (
	"github.com/rs/zerolog"

	starsays "github.com/dinaypatil-web/whatmystarssays"
)

var _ starsays.Logger = Logger{}

type Logger struct{ L zerolog.Logger }

func (z Logger) Debug(msg string, f starsays.Fields) { z.L.Debug().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Info(msg string, f starsays.Fields)  { z.L.Info().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Warn(msg string, f starsays.Fields)  { z.L.Warn().Fields(map[string]any(f)).Msg(msg) }
func (z Logger) Error(msg string, f starsays.Fields) { z.L.Error().Fields(map[string]any(f)).Msg(msg) }

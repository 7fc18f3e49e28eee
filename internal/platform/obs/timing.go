package obs

import (
	"time"

	"go.uber.org/zap"
)

// Time logs the duration of an operation when the returned func runs,
// including the error (if any) the operation finished with:
//
//	defer obs.Time(log, "ors.Route")(&err)
func Time(log *zap.Logger, name string) func(errp *error) {
	start := time.Now()

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Warn("operation failed",
				zap.String("op", name),
				zap.Duration("dur", dur),
				zap.Error(*errp),
			)
			return
		}
		log.Debug("operation finished",
			zap.String("op", name),
			zap.Duration("dur", dur),
		)
	}
}

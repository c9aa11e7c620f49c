package usecase

import (
	"context"
	"sort"
	"time"
)

type HealthUsecase interface {
	// Check runs every dependency probe and reports whether all passed.
	Check(ctx context.Context) (map[string]string, bool)
}

// Probe returns nil when the dependency it checks is reachable.
type Probe func(ctx context.Context) error

type healthUsecase struct {
	probes map[string]Probe
}

func NewHealthUsecase(probes map[string]Probe) HealthUsecase {
	return &healthUsecase{probes: probes}
}

func (u *healthUsecase) Check(ctx context.Context) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	names := make([]string, 0, len(u.probes))
	for name := range u.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	status := map[string]string{"status": "ok"}
	healthy := true
	for _, name := range names {
		if err := u.probes[name](ctx); err != nil {
			status[name] = "error: " + err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}
	if !healthy {
		status["status"] = "degraded"
	}
	return status, healthy
}

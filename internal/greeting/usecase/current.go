package usecase

import (
	"context"

	"momentum-tab/internal/greeting"
	"momentum-tab/pkg/clock"
)

// Current never fails on a profile error; it falls back to the default motto.
func (uc *implUseCase) Current(ctx context.Context) (greeting.Output, error) {
	now := uc.clk.Now()
	name := uc.name(ctx)

	return greeting.Output{
		Now:        now,
		Time:       clock.Format(now),
		Greeting:   clock.Greeting(now, name),
		Name:       name,
		NextChange: clock.UntilNextMinute(now),
	}, nil
}

func (uc *implUseCase) name(ctx context.Context) string {
	if uc.fetch == nil {
		return ""
	}
	if name, ok := uc.names.Get(profileKey); ok {
		return name
	}

	v, err, _ := uc.group.Do(profileKey, func() (any, error) {
		p, err := uc.fetch(ctx)
		if err != nil {
			return "", err
		}
		name := p.GivenName
		if name == "" {
			name = p.Name
		}
		uc.names.Add(profileKey, name)
		return name, nil
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.Current fetch profile: %v", err)
		return ""
	}
	return v.(string)
}

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/wlout/internal/logger"
	"github.com/bnema/wlout/internal/output"
	"github.com/bnema/wlout/internal/protocols"
	"github.com/bnema/wlout/internal/wire"
)

var (
	ErrTransactionInProgress = errors.New("a configuration is already pending")
	ErrNoDirectives          = errors.New("configuration has no directives")
	ErrDuplicateDirective    = errors.New("display configured twice in one configuration")
)

// Apply submits directives as one atomic configuration and waits for the
// compositor's answer. The local state is not touched: it changes only
// when the compositor advertises the new configuration.
//
// On success the layout is shifted back to the origin with a second,
// best-effort configuration unless disabled with WithRenormalize(false).
// The returned error covers transport and usage failures; rejection by
// the compositor is reported through the Result.
func (s *Session) Apply(ctx context.Context, directives ...output.Directive) (output.Result, error) {
	result, err := s.submit(ctx, directives, false)
	if err != nil || result != output.Succeeded || !s.renormalize {
		return result, err
	}

	s.renormalizeLayout(ctx)
	return result, nil
}

// Test asks the compositor whether directives would be accepted without
// applying them.
func (s *Session) Test(ctx context.Context, directives ...output.Directive) (output.Result, error) {
	return s.submit(ctx, directives, true)
}

func (s *Session) renormalizeLayout(ctx context.Context) {
	if err := s.Roundtrip(ctx); err != nil {
		logger.Warn("Failed to refresh outputs after configuration", "error", err)
		return
	}

	directives := output.Renormalize(s.state.Heads())
	if len(directives) == 0 {
		return
	}

	result, err := s.submit(ctx, directives, false)
	switch {
	case err != nil:
		logger.Warn("Failed to move layout to origin", "error", err)
	case result != output.Succeeded:
		logger.Warn("Compositor refused to move layout to origin", "result", result)
	default:
		logger.Info("Moved layout to origin", "heads", len(directives))
	}
}

func (s *Session) submit(ctx context.Context, directives []output.Directive, test bool) (output.Result, error) {
	if _, pending := s.state.Pending(); pending {
		return output.ResultPending, ErrTransactionInProgress
	}
	if err := validate(directives); err != nil {
		return output.ResultPending, err
	}
	if s.state.Finished() {
		return output.ResultPending, ErrManagerFinished
	}

	serial, _ := s.state.Serial()
	config := s.objects.New(protocols.OutputConfigurationInterface)
	s.state.BeginTransaction(config)
	defer s.state.EndTransaction()

	requests, configHeads, err := s.encode(config, serial, directives, test)
	defer func() {
		for _, id := range configHeads {
			s.objects.Remove(id)
		}
	}()
	if err != nil {
		s.objects.Remove(config)
		return output.ResultPending, err
	}
	for _, req := range requests {
		if err := s.send(req); err != nil {
			return output.ResultPending, err
		}
	}

	for s.state.Result() == output.ResultPending {
		if err := s.Dispatch(ctx); err != nil {
			return output.ResultPending, err
		}
	}
	result := s.state.Result()

	if err := s.send(protocols.DestroyConfiguration(config)); err != nil {
		return result, err
	}
	s.objects.Remove(config)

	logger.Debug("Configuration answered", "config", config, "result", result, "test", test)
	return result, nil
}

func (s *Session) encode(config protocols.ObjectID, serial uint32, directives []output.Directive, test bool) ([]*wire.Builder, []protocols.ObjectID, error) {
	requests := []*wire.Builder{protocols.CreateConfiguration(s.manager, config, serial)}
	var configHeads []protocols.ObjectID

	for _, d := range directives {
		if !d.Enable {
			requests = append(requests, protocols.DisableHead(config, d.Head))
			continue
		}

		ch := s.objects.New(protocols.OutputConfigurationHeadInterface)
		configHeads = append(configHeads, ch)
		requests = append(requests, protocols.EnableHead(config, ch, d.Head))

		switch {
		case d.Mode != nil:
			requests = append(requests, protocols.SetMode(ch, d.Mode.ID))
		case d.CustomMode != nil:
			requests = append(requests, protocols.SetCustomMode(ch, d.CustomMode.Width, d.CustomMode.Height, d.CustomMode.Refresh))
		}
		if d.Position != nil {
			requests = append(requests, protocols.SetPosition(ch, d.Position.X, d.Position.Y))
		}
		if d.Transform != nil {
			requests = append(requests, protocols.SetTransform(ch, int32(*d.Transform)))
		}
		if d.Scale != nil {
			requests = append(requests, protocols.SetScale(ch, *d.Scale))
		}
		if d.AdaptiveSync != nil {
			if s.managerVersion < 4 {
				return nil, configHeads, fmt.Errorf("adaptive sync needs output manager version 4, compositor offers %d", s.managerVersion)
			}
			requests = append(requests, protocols.SetAdaptiveSync(ch, uint32(*d.AdaptiveSync)))
		}
	}

	if test {
		requests = append(requests, protocols.DryRunConfiguration(config))
	} else {
		requests = append(requests, protocols.ApplyConfiguration(config))
	}
	return requests, configHeads, nil
}

func validate(directives []output.Directive) error {
	if len(directives) == 0 {
		return ErrNoDirectives
	}
	seen := make(map[protocols.ObjectID]bool, len(directives))
	for _, d := range directives {
		if seen[d.Head] {
			return fmt.Errorf("%w: %s", ErrDuplicateDirective, d.Name)
		}
		seen[d.Head] = true
	}
	return nil
}

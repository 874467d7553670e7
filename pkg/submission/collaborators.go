package submission

import "context"

// Navigator performs the page transition to a destination.
type Navigator interface {
	Navigate(ctx context.Context, dest Destination) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, dest Destination) error

func (f NavigatorFunc) Navigate(ctx context.Context, dest Destination) error { return f(ctx, dest) }

// Announcer exposes a message to assistive technology. It is fire-and-forget.
type Announcer interface {
	Announce(ctx context.Context, message string)
}

// AnnouncerFunc adapts a function to Announcer.
type AnnouncerFunc func(ctx context.Context, message string)

func (f AnnouncerFunc) Announce(ctx context.Context, message string) { f(ctx, message) }

type noopNavigator struct{}

func (noopNavigator) Navigate(context.Context, Destination) error { return nil }

type noopAnnouncer struct{}

func (noopAnnouncer) Announce(context.Context, string) {}

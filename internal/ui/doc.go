// Package ui contains the Bubble Tea program that renders the hero slider.
// The Model type orchestrates messages, while dedicated files own input
// translation, navigation, search, and rendering.
//
// Message flow:
//   - Init mounts the view and enables mouse reporting. Unmount (on quit, and
//     unconditionally when app.Run returns) disables it again; an unmounted
//     model ignores every message, including cooldown timers still in flight.
//   - Update routes each tea.Msg through a typed handler registry. Wheel
//     notches pass through gesture.WheelGate, left-button drags through
//     gesture.SwipeTracker, and clicks on pagination dots become direct
//     selections (internal/ui/input.go).
//   - Every request ends in internal/ui/navigation.go, which asks the
//     slide.Controller for a transition. Accepted transitions schedule a
//     single cooldownElapsedMsg; rejected ones are dropped silently.
//
// State ownership:
//   - The slide.Controller is the only writer of the current index and the
//     animation lock. Handlers read it at call time and never cache it.
//   - The media.Player tracks clip playback for the active item and is
//     restarted on every transition; it never influences navigation.
//
// Timers go through Model.schedule so tests can replace tea.Tick with a
// manual clock and drive the model with Harness.
package ui

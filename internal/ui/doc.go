package ui

// Package ui contains the Fyne-based cassette control window. It polls the
// loopback proxy for playback state, renders the animated tape deck, and
// wires the transport, device, playlist, and queue controls to the api
// client. All UI strings are localized via Localization.

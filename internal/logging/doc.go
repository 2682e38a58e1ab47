// Package logging configures the process-wide slog logger: a compact
// console handler for interactive use, a JSON handler for machine
// consumption, attribute helpers, and component-scoped child loggers.
package logging

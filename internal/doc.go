// Package internal contains the implementation packages behind the
// tailblocks CLI. The component library itself lives in pkg/.
//
// # Package Organization
//
//   - catalog: registers every pkg/ui component and embeds its example fixtures
//   - registry: component catalog with change events for watchers
//   - fixtures: YAML example files, parsed, validated and attached to the registry
//   - renderer: renders a component or fixture example by name
//   - snapshot: HTML normalization and golden file verification
//   - server: preview gallery with live reload over WebSocket
//   - watcher: debounced fsnotify watcher for fixture directories
//   - config: viper configuration with validation
//   - errors: typed errors and the error collector
//   - logging: structured logging over log/slog
//   - version: build metadata
//
// # Inter-Package Communication
//
//   - The registry is the single source of components and examples
//   - The fixtures loader populates it at startup and on watcher events
//   - The renderer and snapshot verifier read from it
//   - The server broadcasts a reload to browsers after each fixture change
//
// Paths from configuration are validated against traversal before use, and
// the WebSocket endpoint checks the request origin.
package internal

/*
Package ports defines the interfaces between the core model and its adapters,
following Hexagonal Architecture principles.

Adapters (in-memory, Redis) implement these interfaces; the facade and the
HTTP layer depend only on the interfaces. The package also ships a reusable
contract test so every Store implementation is verified against the same
behavior.
*/
package ports

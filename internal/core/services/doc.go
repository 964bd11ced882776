// Package services implements the core application logic behind the
// driving ports: the offline index builder, the runtime search
// service with its precomputed-or-fallback load protocol, and the
// bookmark service. Services depend only on domain types and driven
// port interfaces.
package services

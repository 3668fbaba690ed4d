// Package runtime runs the external tools a generation depends on (git,
// package managers) as synchronous child processes whose standard streams
// are connected to the invoking terminal. The Runner interface lets the
// orchestrator be exercised with a recording fake instead of real binaries.
package runtime

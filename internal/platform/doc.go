// Package platform isolates the few places where generation behaves
// differently per operating system: the permission bits given to written
// files and directories, and which commands must be launched through the
// Windows command interpreter because they ship as .cmd shims.
package platform

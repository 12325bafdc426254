// Package cli implements the templatehub command-line client with cobra.
//
// Every subcommand is built by a NewXCommand(opts) constructor sharing the
// root's RootOptions. Commands print through cmd.OutOrStdout so tests can
// capture output, and reach the server through the newClient seam.
package cli

// Package config loads runtime configuration for the TemplateHub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with the root --config flag.
//  3. TEMPLATEHUB_SERVER_ADDR, TEMPLATEHUB_SESSION_DIR and
//     TEMPLATEHUB_REQUEST_TIMEOUT environment variables.
//  4. Command-line flags of the cobra commands, which override everything.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "session_dir": "/home/me/.templatehub",
//	  "request_timeout": "30s"
//	}
package config

package commands

import "fmt"

const help = `gallery: photo album server.

Usage:
  gallery <command> [arguments]

Commands:
  run <path_to_config_file>     start the HTTP server.
  watch <path_to_config_file>   log like and view events as they happen.
  version                       print the version.
  help                          print this help.

Secrets are read from the environment (or a .env file outside prod):
  DATABASE_URI, BROKER_URI, MINIO_ROOT_USER, MINIO_ROOT_PASSWORD,
  SESSION_SECRET, ADMIN_PIN, SITE_NAME.
`

func HandleHelp(_ []string) {
	fmt.Print(help) //nolint
}

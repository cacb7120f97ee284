// Package vars supplies the variables that %VAR% path placeholders expand to.
//
// Variables come from two places, consulted in order:
//   - env files passed with --env-file or listed under env_files in fnav.yaml
//   - the process environment (including a .env file loaded at startup)
//
// Env files use the .env format understood by github.com/joho/godotenv.
// When several files define the same key the last file wins.
//
// Reading the files never mutates the process environment, so variables
// from an env file are visible to path resolution only.
package vars

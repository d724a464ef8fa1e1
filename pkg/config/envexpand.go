package config

import (
	"bytes"
	"os"
	"text/template"
)

// ExpandEnv expands environment variables in roundtable.yaml content using
// Go template syntax: {{.VAR_NAME}}. Template syntax rather than $VAR keeps
// literal dollar signs in prompts, passwords, and base URLs untouched.
//
// Examples:
//   - api_key: "{{.OPENAI_API_KEY}}"
//   - jwt_secret_env: SUPABASE_JWT_SECRET (plain values pass through)
//   - host: "{{.DB_HOST}}:{{.DB_PORT}}"
//
// Missing variables expand to the empty string; startup validation rejects
// required fields left empty. Content that fails to parse or execute as a
// template is returned unchanged so the YAML parser reports the real error.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		// Split on the first = only; values may contain =.
		if idx := bytes.IndexByte([]byte(env), '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}

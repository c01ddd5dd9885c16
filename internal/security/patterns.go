package security

import "regexp"

// suspiciousPattern pairs a regex with the description attached to any
// finding it produces.
type suspiciousPattern struct {
	re          *regexp.Regexp
	description string
}

// The pre-filter bank. Patterns are matched against lowercased text, first
// match only. Four categories: exfiltration, prompt injection, vulnerability
// injection, and social engineering.
var suspiciousPatterns = []suspiciousPattern{
	// Exfiltration attempts
	{regexp.MustCompile(`(send|post|upload|exfiltrate).{0,40}(\.env|api.?key|secret|password|token)`),
		"possible attempt to leak sensitive data"},
	{regexp.MustCompile(`(read|cat|open).{0,30}(\.env|credentials|\.pem|\.key)`),
		"attempts to read sensitive files"},
	{regexp.MustCompile(`curl.{0,60}(webhook|requestbin|ngrok|burp)`),
		"attempts external data exfiltration"},

	// Prompt injection
	{regexp.MustCompile(`ignore (previous|prior|above|all).{0,20}instruction`),
		"prompt injection: attempts to override system instructions"},
	{regexp.MustCompile(`disregard.{0,20}(rule|guideline|instruction)`),
		"prompt injection: attempts to disregard rules"},
	{regexp.MustCompile(`you are now.{0,30}(different|new|another)`),
		"attempts to change the assistant's identity"},
	{regexp.MustCompile(`act as.{0,20}(without|no).{0,20}(restrict|limit|filter)`),
		"attempts to bypass restrictions"},

	// Backdoor / vulnerability injection
	{regexp.MustCompile(`(md5|sha1)\(.{0,20}password`),
		"steers toward insecure password hashing"},
	{regexp.MustCompile(`f["'].{0,20}select.{0,20}\{.{0,20}\}`),
		"steers toward SQL injection vulnerabilities"},
	{regexp.MustCompile(`eval\(.{0,30}(input|request|user)`),
		"steers toward dangerous eval() usage"},
	{regexp.MustCompile(`shell=true.{0,30}(input|request|user)`),
		"steers toward command injection vulnerabilities"},
	{regexp.MustCompile(`(debug|admin).{0,20}bypass`),
		"possible backdoor logic"},

	// Social engineering
	{regexp.MustCompile(`(convince|persuade|tell).{0,30}user.{0,30}(disable|bypass|ignore).{0,20}(security|warning|error)`),
		"steers toward tricking the user into bypassing security"},
	{regexp.MustCompile(`do not (warn|tell|inform).{0,20}user`),
		"instructs hiding information from the user"},
}

// export_test.go exports private functions for white-box testing.
package logger

// ErrorChainMessages returns the messages of each level of err's chain.
func ErrorChainMessages(err error) []string {
	entries := collectErrorEntries(err)
	messages := make([]string, len(entries))
	for i, e := range entries {
		messages[i] = e.message
	}
	return messages
}

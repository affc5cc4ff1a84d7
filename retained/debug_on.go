//go:build guidebug

package retained

// debugAsserts turns programming errors (wrong widget type, unguarded
// mutation) into panics.
const debugAsserts = true

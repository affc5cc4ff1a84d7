//go:build !guidebug

package retained

const debugAsserts = false

//go:build debug

package camera

const debugAssertions = true

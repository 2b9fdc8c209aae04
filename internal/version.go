package internal

// Version is the current text2ipa release.
var Version = "0.1.0"

package main

// Version is the bumpver CLI's own version.
var Version = "0.1.0"

package main

func Name() string    { return "Incomplete" }
func Version() string { return "0.0.1" }

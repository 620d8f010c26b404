package searcher

// Default search settings

const DefaultDepth = 4 // Plies

const DefaultGoroutines = 1 // Sequential search

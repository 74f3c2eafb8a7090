package service

// HashRefresh exposes hashRefresh to the external test package.
var HashRefresh = hashRefresh

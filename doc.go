// Package main provides the entry point for the gofolio personal portfolio
// website. It runs a web server using the Fiber framework serving the public
// site (homepage, projects, blog, contact form) and a password-protected
// admin dashboard for content management, backed by gorm for persistence and
// a lightweight first-party analytics tracker.
package main

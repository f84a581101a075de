// Package clientip extracts the real client IP address from HTTP requests
// served behind proxies, load balancers, or CDNs.
//
// Headers are checked in priority order:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry is the original client)
//  4. X-Real-IP (nginx and other proxies)
//  5. RemoteAddr (direct connection)
//
// Every candidate is validated and normalized with net.ParseIP; malformed
// headers are skipped and the unspecified address 0.0.0.0 is rejected. When
// no header yields a valid IP the raw RemoteAddr is returned as a fallback.
package clientip

// Package services implements the driving ports over the driven
// ports: the annotation store (hydration, mutation, persistence) and
// the planner (merged projections, countdown, day status).
package services

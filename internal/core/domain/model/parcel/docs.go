// Package parcel contains the Parcel aggregate and its lifecycle state machine.
//
// A parcel is one physical package tracked under a delivery note, from the
// moment the supplier announces it (Awaited) through reception, internal
// distribution and delivery to the requester. The Problem side-channel state
// captures anomalies and must be explicitly resolved back into the circuit.
//
// Lifecycle transitions are applied by the application-layer command handlers,
// which combine the status mutation with an audit entry and the notification
// fan-out into one unit of work.
package parcel

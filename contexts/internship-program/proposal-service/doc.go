// Package proposalservice implements student internship proposal registration
// inside the internship-program context.
//
// The module owns the registration form rules (required fields, email shape,
// project date window), admission into the active convocatoria (offered type
// and tutor roster membership, one live proposal per student per call with
// resubmission only after rejection), partial updates gated by the lifecycle
// status, the administrative status override and the proposal read side. It
// keeps business rules in application/domain layers and isolates
// infrastructure concerns behind ports and adapters.
package proposalservice

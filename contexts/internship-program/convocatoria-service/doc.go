// Package convocatoriaservice implements the internship call lifecycle inside
// the internship-program context.
//
// The module owns convocatoria creation (single active call, end-of-day UTC
// deadlines, a bounded catalog of internship types, a snapshotted tutor
// roster), the read side (active call, listings, available tutors) and the
// background expiration sweep. It keeps business rules in application/domain
// layers and isolates infrastructure concerns behind ports and adapters.
package convocatoriaservice

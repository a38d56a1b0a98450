package clinic

import "strings"

type Patient struct {
	Name                 string
	ConditionHistory     string
	PrescribedMedication string
	Treatment            string
}

// PatientDetails holds the fields an update is allowed to overwrite.
type PatientDetails struct {
	ConditionHistory     string
	PrescribedMedication string
	Treatment            string
}

func NewPatient(name string, d PatientDetails) Patient {
	p := Patient{Name: name}
	p.Apply(d)
	return p
}

// Apply overwrites the mutable fields. The name never changes.
func (p *Patient) Apply(d PatientDetails) {
	p.ConditionHistory = d.ConditionHistory
	p.PrescribedMedication = d.PrescribedMedication
	p.Treatment = d.Treatment
}

func (p Patient) Details() PatientDetails {
	return PatientDetails{
		ConditionHistory:     p.ConditionHistory,
		PrescribedMedication: p.PrescribedMedication,
		Treatment:            p.Treatment,
	}
}

func (p Patient) DisplayName() string { return p.Name }

func (p Patient) Display() string {
	var b strings.Builder
	b.WriteString("\nPatient: " + p.Name + "\n")
	b.WriteString("Condition History: " + p.ConditionHistory + "\n")
	b.WriteString("Prescribed Medications: " + p.PrescribedMedication + "\n")
	b.WriteString("Treatments: " + p.Treatment + "\n")
	b.WriteString("---------------------------------\n")
	return b.String()
}

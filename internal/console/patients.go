package console

import (
	"errors"

	"go.uber.org/zap"

	"github.com/openclintech/go-clinic-records/internal/clinic"
)

const patientMenu = `
===== Patient Management =====
1. Add New Patient
2. Update Patient
3. View All Patients
Enter choice: `

func (c *Controller) patientMenu() error {
	choice, ok, err := c.promptInt(patientMenu)
	if err != nil {
		return err
	}
	if !ok {
		c.printf("Invalid option.\n")
		return nil
	}

	switch choice {
	case 1:
		return c.addPatient()
	case 2:
		return c.updatePatient()
	case 3:
		for p := range c.d.Patients.All() {
			c.printf("%s", p.Display())
		}
	default:
		c.printf("Invalid option.\n")
	}
	return nil
}

func (c *Controller) addPatient() error {
	var p clinic.Patient
	if err := c.promptFields(
		field{"Enter name: ", &p.Name},
		field{"Condition history: ", &p.ConditionHistory},
		field{"Prescribed meds: ", &p.PrescribedMedication},
		field{"Treatment: ", &p.Treatment},
	); err != nil {
		return err
	}

	if err := c.d.Patients.Add(p); err != nil {
		return err
	}
	if c.d.Metrics != nil {
		c.d.Metrics.PatientsCreated.Inc()
	}
	c.log.Info("patient added", zap.Int("patients", c.d.Patients.Len()))
	c.printf("Patient added.\n")
	return nil
}

func (c *Controller) updatePatient() error {
	name, err := c.prompt("Enter patient name to update: ")
	if err != nil {
		return err
	}
	if _, found, err := c.d.Patients.Find(name); err != nil {
		return err
	} else if !found {
		c.printf("Patient not found.\n")
		return nil
	}

	var d clinic.PatientDetails
	if err := c.promptFields(
		field{"New condition history: ", &d.ConditionHistory},
		field{"New meds: ", &d.PrescribedMedication},
		field{"New treatment: ", &d.Treatment},
	); err != nil {
		return err
	}

	err = c.d.Patients.Update(name, d)
	if errors.Is(err, clinic.ErrPatientNotFound) {
		c.printf("Patient not found.\n")
		return nil
	}
	if err != nil {
		return err
	}
	if c.d.Metrics != nil {
		c.d.Metrics.PatientsUpdated.Inc()
	}
	c.log.Info("patient updated")
	c.printf("Updated.\n")
	return nil
}

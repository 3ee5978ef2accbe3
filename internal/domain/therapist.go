package domain

// Therapist es el profesional autenticado que consulta perfiles. El acceso
// se otorga por clave compartida; no hay registro de cuentas.
type Therapist struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

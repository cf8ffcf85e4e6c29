package submit

import "github.com/andresaoe/portafolio/internal/contact"

// Visitor-facing copy.
const (
	MsgFormConstraint  = "Revisa el formulario: nombre de 2 a 80 caracteres, un email válido y un mensaje de 10 a 2000 caracteres."
	MsgMissingFields   = "Por favor completa nombre, email y mensaje antes de enviar."
	MsgNameTooShort    = "El nombre debe tener al menos 2 caracteres."
	MsgNameTooLong     = "El nombre no puede superar los 80 caracteres."
	MsgEmailTooLong    = "El email no puede superar los 254 caracteres."
	MsgEmailWhitespace = "El email no puede contener espacios."
	MsgEmailFormat     = "Ingresa un email válido."
	MsgMessageTooShort = "El mensaje debe tener al menos 10 caracteres."
	MsgMessageTooLong  = "El mensaje no puede superar los 2000 caracteres."

	MsgNotConfigured = "El formulario de contacto no está configurado todavía. Avísame por LinkedIn para que lo revise."

	MsgTableMissing  = "El formulario no está listo: falta la tabla de mensajes en la base de datos. Avísame por LinkedIn para que lo revise."
	MsgEmailRejected = "El email no tiene un formato válido. Revísalo e inténtalo de nuevo."
	MsgPolicyBlocked = "La base de datos rechazó el mensaje por permisos. Avísame por LinkedIn para que lo revise."
	MsgPersistFailed = "No se pudo enviar el mensaje. Inténtalo de nuevo en unos minutos."

	MsgSent         = "¡Mensaje enviado! Te responderé lo antes posible."
	MsgSentFallback = "¡Mensaje recibido! Si no te respondo pronto, escríbeme por LinkedIn."
)

var reasonMessages = map[contact.Reason]string{
	contact.ReasonFormConstraint:  MsgFormConstraint,
	contact.ReasonMissingFields:   MsgMissingFields,
	contact.ReasonNameTooShort:    MsgNameTooShort,
	contact.ReasonNameTooLong:     MsgNameTooLong,
	contact.ReasonEmailTooLong:    MsgEmailTooLong,
	contact.ReasonEmailWhitespace: MsgEmailWhitespace,
	contact.ReasonEmailFormat:     MsgEmailFormat,
	contact.ReasonMessageTooShort: MsgMessageTooShort,
	contact.ReasonMessageTooLong:  MsgMessageTooLong,
}

// ValidationMessage returns the copy for a contact validation error.
func ValidationMessage(err error) string {
	if msg, ok := reasonMessages[contact.ReasonOf(err)]; ok {
		return msg
	}
	return MsgFormConstraint
}

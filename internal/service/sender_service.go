package service

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"path/filepath"
	"time"

	"hotelio/internal/db"
	"hotelio/internal/entities"
)

const dateFormat = "02/01/2006"

type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

// NotifyReservation sends the confirmation or cancellation email for a
// reservation, plus an SMS when the client has a phone number on file.
// Failures are logged and never propagate to the caller.
func (s *SenderService) NotifyReservation(client db.Client, chambre db.Chambre, res db.Reservation, statut string) {
	parisLoc, errLoc := time.LoadLocation("Europe/Paris")
	if errLoc != nil {
		parisLoc = time.FixedZone("CET", 1*60*60)
	}

	emailData := entities.ReservationEmailData{
		ClientNom:        client.Nom,
		ReservationID:    res.ID,
		ChambreNumero:    chambre.Numero,
		ChambreType:      chambre.Type,
		ArriveeFormatted: res.DateArrivee.Format(dateFormat),
		DepartFormatted:  res.DateDepart.Format(dateFormat),
		Statut:           statut,
		CurrentYear:      time.Now().In(parisLoc).Year(),
	}

	emailSubject := fmt.Sprintf("Votre réservation Hotelio est %s - N°%d", statut, res.ID)
	plainTextBody := fmt.Sprintf(
		"Bonjour %s,\n\nVotre réservation Hotelio est %s.\n\n"+
			"Détails de la réservation :\n"+
			"Réservation n° : %d\n"+
			"Chambre : %d (%s)\n"+
			"Arrivée : %s\n"+
			"Départ : %s\n\n"+
			"Merci d'avoir choisi Hotelio.",
		emailData.ClientNom, statut, emailData.ReservationID,
		emailData.ChambreNumero, emailData.ChambreType,
		emailData.ArriveeFormatted, emailData.DepartFormatted,
	)

	tmplPath := filepath.Join("internal", "templates", "reservation_email.html")
	tmpl, err := template.ParseFiles(tmplPath)
	if err != nil {
		log.Printf("ALERT: could not parse HTML email template (%s): %v", tmplPath, err)
	}

	var htmlBody string
	if tmpl != nil {
		var htmlBodyBuffer bytes.Buffer
		if err := tmpl.Execute(&htmlBodyBuffer, emailData); err != nil {
			log.Printf("ALERT: could not execute HTML email template for reservation %d: %v", res.ID, err)
		}
		htmlBody = htmlBodyBuffer.String()
	}

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if errEmail := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); errEmail != nil {
			log.Printf("ALERT (async): email for reservation %d failed: %v", res.ID, errEmail)
		}
	}(client.Email, client.Nom, emailSubject, plainTextBody, htmlBody)

	if client.Telephone == "" {
		return
	}

	smsMessage := fmt.Sprintf("Hotelio : votre réservation n°%d est %s !\nArrivée : %s.\nPlus de détails dans votre email.",
		res.ID, statut, emailData.ArriveeFormatted)

	if errSMS := SendSMS(client.Telephone, smsMessage); errSMS != nil {
		log.Printf("ALERT: reservation %d was processed, but the SMS to %s failed: %v", res.ID, client.Telephone, errSMS)
	}
}

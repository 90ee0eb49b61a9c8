package services

import (
	"fmt"

	"github.com/alimgiray/folio/internal/models"
	"github.com/xuri/excelize/v2"
)

const messagesSheet = "Messages"

var messageHeaders = []string{"ID", "Received", "Name", "Email", "Status", "Relay Error", "Message"}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// ContactMessagesWorkbook builds a workbook with one row per message.
// The caller owns the returned file and must Close it.
func (s *ExportService) ContactMessagesWorkbook(messages []*models.ContactMessage) (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, messagesSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(messagesSheet, "A1", &messageHeaders); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		f.SetCellStyle(messagesSheet, "A1", "G1", headerStyle)
	}

	for i, message := range messages {
		relayError := ""
		if message.RelayError != nil {
			relayError = *message.RelayError
		}

		row := []interface{}{
			message.ID,
			message.CreatedAt.Format("2006-01-02 15:04:05"),
			message.FromName,
			message.FromEmail,
			string(message.Status),
			relayError,
			message.Message,
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(messagesSheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	f.SetColWidth(messagesSheet, "A", "A", 38)
	f.SetColWidth(messagesSheet, "B", "F", 22)
	f.SetColWidth(messagesSheet, "G", "G", 80)

	return f, nil
}

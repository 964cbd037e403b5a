package models

import (
	"testing"
	"time"

	"aura-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingExamination() *Examination {
	return NewExamination("exam-1", "patient-1", "clinic-1", "img-1", "https://cdn.example.com/img-1.jpg", time.Now().UTC())
}

func TestApplyAIResultFromPending(t *testing.T) {
	exam := newPendingExamination()

	err := exam.ApplyAIResult(AIResult{
		Diagnosis:  "DR_Moderate",
		RiskLevel:  "Medium",
		RiskScore:  0.62,
		HeatmapURL: "https://cdn.example.com/heatmaps/exam-1.png",
	})

	require.NoError(t, err)
	assert.Equal(t, ExaminationAnalyzed, exam.Status)
	assert.Equal(t, "DR_Moderate", exam.Diagnosis)
	assert.Equal(t, "DR_Moderate", exam.AiDiagnosis)
	assert.Equal(t, "Medium", exam.AiRiskLevel)
	assert.InDelta(t, 0.62, exam.AiRiskScore, 1e-9)
}

func TestApplyAIResultNormalizesPercentScale(t *testing.T) {
	exam := newPendingExamination()

	require.NoError(t, exam.ApplyAIResult(AIResult{Diagnosis: "DR_Severe", RiskLevel: "High", RiskScore: 45}))

	assert.InDelta(t, 0.45, exam.AiRiskScore, 1e-9)
}

func TestApplyAIResultRejectedOutsidePending(t *testing.T) {
	testCases := []struct {
		name    string
		prepare func(*Examination)
	}{
		{
			name: "analyzed",
			prepare: func(e *Examination) {
				require.NoError(t, e.ApplyAIResult(AIResult{Diagnosis: "DR_Mild"}))
			},
		},
		{
			name: "verified",
			prepare: func(e *Examination) {
				require.NoError(t, e.ApplyAIResult(AIResult{Diagnosis: "DR_Mild"}))
				require.NoError(t, e.VerifyByDoctor("doctor-1", "ok", "DR_Mild"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			exam := newPendingExamination()
			tc.prepare(exam)
			statusBefore := exam.Status
			diagnosisBefore := exam.Diagnosis

			err := exam.ApplyAIResult(AIResult{Diagnosis: "DR_Severe"})

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, statusBefore, exam.Status)
			assert.Equal(t, diagnosisBefore, exam.Diagnosis)
		})
	}
}

func TestVerifyByDoctorFromPendingFails(t *testing.T) {
	exam := newPendingExamination()

	err := exam.VerifyByDoctor("doctor-1", "ok", "DR_Mild")

	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, ExaminationPending, exam.Status)
}

func TestAnalyzeThenVerifyOverwritesDiagnosis(t *testing.T) {
	exam := newPendingExamination()

	require.NoError(t, exam.ApplyAIResult(AIResult{Diagnosis: "DR_Moderate", RiskLevel: "Medium", RiskScore: 0.5}))
	assert.Equal(t, ExaminationAnalyzed, exam.Status)
	assert.Equal(t, "DR_Moderate", exam.Diagnosis)

	require.NoError(t, exam.VerifyByDoctor("doctor-1", "ok", "DR_Mild"))

	assert.Equal(t, ExaminationVerified, exam.Status)
	assert.Equal(t, "DR_Mild", exam.Diagnosis)
	assert.Equal(t, "ok", exam.DoctorNotes)
	assert.Equal(t, "doctor-1", exam.DoctorID)
}

func TestVerifiedExaminationAllowsCorrection(t *testing.T) {
	exam := newPendingExamination()
	require.NoError(t, exam.ApplyAIResult(AIResult{Diagnosis: "DR_Moderate"}))
	require.NoError(t, exam.VerifyByDoctor("doctor-1", "first pass", "DR_Moderate"))

	require.NoError(t, exam.VerifyByDoctor("doctor-2", "second opinion", "DR_Severe"))

	assert.Equal(t, ExaminationVerified, exam.Status)
	assert.Equal(t, "DR_Severe", exam.Diagnosis)
	assert.Equal(t, "doctor-2", exam.DoctorID)
}

func TestDisplayDiagnosisPrefersDoctorConclusion(t *testing.T) {
	exam := newPendingExamination()
	require.NoError(t, exam.ApplyAIResult(AIResult{Diagnosis: "DR_Moderate"}))

	assert.Equal(t, "DR_Moderate", exam.DisplayDiagnosis())

	require.NoError(t, exam.VerifyByDoctor("doctor-1", "ok", "DR_Mild"))
	assert.Equal(t, "DR_Mild", exam.DisplayDiagnosis())
}

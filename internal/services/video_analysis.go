package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"alfredoptarigan/candidate-screening/internal/models"
	"alfredoptarigan/candidate-screening/internal/repositories"
)

const videoContentType = "video/mp4"

var (
	ErrEmptyVideo      = errors.New("no video data found")
	ErrEmptyTranscript = errors.New("transcription returned no text")
)

type VideoAnalysisService interface {
	AnalyzeVideo(ctx context.Context, applicationID uuid.UUID, videoPath string) (*models.VideoAnalysisResult, error)
}

type VideoAnalysisOptions struct {
	// Lenient stores the model output as-is when it fails validation.
	Lenient bool
	// Indexer is optional; when set, transcripts are indexed after the write.
	Indexer TranscriptIndexer
}

type videoAnalysisService struct {
	videos      Storage
	transcriber Transcriber
	chat        ChatModel
	appRepo     repositories.ApplicationRepository
	opts        VideoAnalysisOptions
	log         *zap.Logger
}

func NewVideoAnalysisService(
	videos Storage,
	transcriber Transcriber,
	chat ChatModel,
	appRepo repositories.ApplicationRepository,
	opts VideoAnalysisOptions,
	log *zap.Logger,
) VideoAnalysisService {
	return &videoAnalysisService{
		videos:      videos,
		transcriber: transcriber,
		chat:        chat,
		appRepo:     appRepo,
		opts:        opts,
		log:         log,
	}
}

// AnalyzeVideo downloads, transcribes and analyzes an application video, then
// stores both results on the application. The first failing step ends the run.
func (s *videoAnalysisService) AnalyzeVideo(ctx context.Context, applicationID uuid.UUID, videoPath string) (*models.VideoAnalysisResult, error) {
	log := s.log.With(
		zap.String("application_id", applicationID.String()),
		zap.String("video_path", videoPath),
	)

	log.Info("📥 Downloading video")
	data, err := s.videos.Download(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to download video: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyVideo
	}

	log.Info("🎙️ Transcribing video", zap.Int("bytes", len(data)))
	transcript, err := s.transcriber.Transcribe(ctx, Media{
		Filename:    mediaFilename(videoPath),
		ContentType: videoContentType,
		Data:        data,
	})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyTranscript
	}

	log.Info("🤖 Analyzing transcript", zap.Int("transcript_chars", len(transcript)))
	raw, err := s.chat.Complete(ctx, VideoAnalysisSystemPrompt, transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze transcript: %w", err)
	}

	analysis, _, err := ValidateVideoAnalysis(raw)
	if err != nil {
		if !s.opts.Lenient {
			return nil, err
		}
		log.Warn("⚠️ Storing analysis that failed validation", zap.Error(err))
		analysis = raw
	}

	log.Info("💾 Saving video analysis")
	if err := s.appRepo.UpdateVideoAnalysis(ctx, applicationID, transcript, analysis); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	if s.opts.Indexer != nil {
		if err := s.opts.Indexer.IndexTranscript(ctx, applicationID, transcript); err != nil {
			log.Warn("⚠️ Failed to index transcript", zap.Error(err))
		}
	}

	log.Info("✅ Video analysis completed")
	return &models.VideoAnalysisResult{
		Transcript: transcript,
		Analysis:   analysis,
	}, nil
}

// mediaFilename keeps the original name so the transcription API can infer
// the container format, falling back to an mp4 name.
func mediaFilename(videoPath string) string {
	name := path.Base(videoPath)
	if name == "." || name == "/" || path.Ext(name) == "" {
		return "video.mp4"
	}
	return name
}

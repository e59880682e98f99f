package repository

import (
	"tutoria_backend/internal/model"

	"gorm.io/gorm"
)

type ConversationRepository struct {
	DB *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{DB: db}
}

func (r *ConversationRepository) Create(conversation *model.Conversation) error {
	return r.DB.Create(conversation).Error
}

func (r *ConversationRepository) FindByUserID(userID uint) ([]model.Conversation, error) {
	var conversations []model.Conversation
	err := r.DB.Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *ConversationRepository) FindByIDAndUserID(id string, userID uint) (*model.Conversation, error) {
	var conversation model.Conversation
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&conversation).Error
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *ConversationRepository) Update(conversation *model.Conversation) error {
	return r.DB.Save(conversation).Error
}

func (r *ConversationRepository) Delete(id string, userID uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&model.Message{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Conversation{}).Error
	})
}

func (r *ConversationRepository) AddMessage(message *model.Message) error {
	return r.DB.Create(message).Error
}

func (r *ConversationRepository) FindMessages(conversationID string) ([]model.Message, error) {
	var messages []model.Message
	err := r.DB.Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ConversationRepository) CountMessagesByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Message{}).
		Joins("JOIN conversations ON conversations.id = messages.conversation_id").
		Where("conversations.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

package sqlinline

// Foreign keys are cast to uuid at write time so every later join compares
// uuid to uuid.

const QInsertParticipant = `--sql 2b3244d9-8fa6-4562-b16e-dca8ae15a37c
insert into participants (id, camp_id, participant_email, participant_name, camp_name, camp_fees, healthcare_professional, date_time, confirmation_status, payment_status, properties, created_at)
values (gen_random_uuid(), $1::uuid, $2::text, $3::text, $4::text, $5::text, $6::text, $7::text, $8::text, $9::text, coalesce($10::jsonb, '{}'::jsonb), now())
returning id;
`

const QSelectParticipantByID = `--sql 47aa7c66-a556-408d-96db-1bec4fd74bc0
select id, camp_id, participant_email, participant_name, camp_name, camp_fees, healthcare_professional, date_time, confirmation_status, payment_status, properties, created_at
from participants
where id = $1::uuid
limit 1;
`

const QSelectParticipantCampID = `--sql 84cb6b83-0db5-4711-a522-5a540f0256f5
select camp_id
from participants
where id = $1::uuid
limit 1;
`

const QDeleteParticipant = `--sql c8080296-0124-4026-b4b2-5d687a537340
delete from participants
where id = $1::uuid;
`

const QConfirmParticipant = `--sql 96bd8546-9a0e-44a8-bc96-5c0e91baa182
update participants
set confirmation_status = $2::text
where id = $1::uuid;
`

const QSetParticipantPaid = `--sql d7b6cd91-e521-4c72-a5fb-6fec6dc2ccf7
update participants
set payment_status = $2::text
where id = $1::uuid;
`

const QListParticipantsByEmail = `--sql 9b7b3803-dd9a-461d-83df-a81cf2ce0c34
select id, camp_id, participant_email, participant_name, camp_name, camp_fees, healthcare_professional, date_time, confirmation_status, payment_status, properties, created_at
from participants
where participant_email = $1::text
  and ($2::text = ''
       or camp_name ilike '%' || $2::text || '%'
       or confirmation_status ilike '%' || $2::text || '%'
       or payment_status ilike '%' || $2::text || '%'
       or healthcare_professional ilike '%' || $2::text || '%'
       or date_time ilike '%' || $2::text || '%')
order by created_at desc;
`

const QListParticipantsAdmin = `--sql 72180592-f5c5-47b7-a573-115953176447
select id, camp_id, participant_email, participant_name, camp_name, camp_fees, healthcare_professional, date_time, confirmation_status, payment_status, properties, created_at
from participants
where $1::text = ''
   or camp_name ilike '%' || $1::text || '%'
order by created_at desc;
`

const QSelectParticipantsByIDs = `--sql c6dac21a-4de7-4632-8f3b-4270baa959e3
select id, camp_name, camp_fees, confirmation_status, payment_status
from participants
where id = any($1::uuid[]);
`
